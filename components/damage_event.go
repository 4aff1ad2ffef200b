package components

import "github.com/yohamta/donburi"

// DamageEventData is damage landed this tick and not yet applied to Health.
// Several hits in one tick accumulate into one event.
type DamageEventData struct {
	Amount float64
	Hits   int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()

// AddDamage queues amount on e, creating the event if needed.
func AddDamage(e *donburi.Entry, amount float64) {
	if e.HasComponent(DamageEvent) {
		evt := DamageEvent.Get(e)
		evt.Amount += amount
		evt.Hits++
		return
	}
	donburi.Add(e, DamageEvent, &DamageEventData{Amount: amount, Hits: 1})
}
