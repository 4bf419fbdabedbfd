package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current float64
	Max     float64
}

// TakeDamage lowers health, never below zero.
func (h *HealthData) TakeDamage(amount float64) {
	h.Current -= amount
	if h.Current < 0 {
		h.Current = 0
	}
}

// Heal raises health, never above Max.
func (h *HealthData) Heal(amount float64) {
	h.Current += amount
	if h.Current > h.Max {
		h.Current = h.Max
	}
}

func (h *HealthData) IsAlive() bool {
	return h.Current > 0
}

// Ratio is Current/Max, or 0 when Max is not positive.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var Health = donburi.NewComponentType[HealthData]()
