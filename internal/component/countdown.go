// internal/component/countdown.go
package component

// Countdown — оставшееся время в мс. Используется для кулдаунов навыков,
// времени жизни снарядов, ресурсов и эффектов.
type Countdown struct {
	Remaining float64
}

// NewCountdown создаёт таймер с заданным временем.
func NewCountdown(duration float64) Countdown {
	return Countdown{Remaining: duration}
}

// Set перезапускает таймер.
func (c *Countdown) Set(duration float64) {
	c.Remaining = duration
}

// Tick уменьшает оставшееся время, не опускаясь ниже нуля.
func (c *Countdown) Tick(deltaTime float64) {
	c.Remaining -= deltaTime
	if c.Remaining < 0 {
		c.Remaining = 0
	}
}

// Done — таймер истёк
func (c Countdown) Done() bool {
	return c.Remaining <= 0
}

// Interval — периодический накопитель: срабатывает каждые Period мс.
type Interval struct {
	Period  float64
	Elapsed float64
}

// Step накапливает время и возвращает, сколько раз истёк период.
func (i *Interval) Step(deltaTime float64) int {
	if i.Period <= 0 {
		return 0
	}
	i.Elapsed += deltaTime
	fired := 0
	for i.Elapsed >= i.Period {
		i.Elapsed -= i.Period
		fired++
	}
	return fired
}

// Reset обнуляет накопленное время.
func (i *Interval) Reset() {
	i.Elapsed = 0
}
