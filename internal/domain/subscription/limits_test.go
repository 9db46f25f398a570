package subscription

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func TestLimitsCanAdd(t *testing.T) {
	tests := []struct {
		name    string
		limits  *Limits
		canAdd  bool
	}{
		{"nil limits row allows", nil, true},
		{"nil max is unlimited", &Limits{CurrentVehicles: 999}, true},
		{"below cap", &Limits{CurrentVehicles: 29, MaxVehicles: intPtr(30)}, true},
		{"at cap", &Limits{CurrentVehicles: 30, MaxVehicles: intPtr(30)}, false},
		{"over cap", &Limits{CurrentVehicles: 31, MaxVehicles: intPtr(30)}, false},
		{"zero cap", &Limits{CurrentVehicles: 0, MaxVehicles: intPtr(0)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.canAdd, tt.limits.CanAddVehicle())
		})
	}
}

func TestLimitsCanAddPerResource(t *testing.T) {
	l := &Limits{
		CurrentVehicles:  5,
		CurrentClients:   30,
		CurrentEmployees: 2,
		MaxVehicles:      intPtr(10),
		MaxClients:       intPtr(30),
		MaxEmployees:     nil,
	}

	assert.True(t, l.CanAddVehicle())
	assert.False(t, l.CanAddClient())
	assert.True(t, l.CanAddEmployee())
}

func TestLimitsUsage(t *testing.T) {
	l := &Limits{
		CurrentVehicles: 15,
		MaxVehicles:     intPtr(30),
		CurrentClients:  7,
	}

	vu := l.VehicleUsage()
	assert.Equal(t, 15, vu.Current)
	assert.Equal(t, 30, vu.Max)
	assert.InDelta(t, 50.0, vu.Percentage, 0.001)

	// Unlimited resources read as max 0, percentage 0.
	cu := l.ClientUsage()
	assert.Equal(t, 7, cu.Current)
	assert.Equal(t, 0, cu.Max)
	assert.Zero(t, cu.Percentage)

	// Missing limits row reads as all zeros.
	var missing *Limits
	assert.Equal(t, Usage{}, missing.VehicleUsage())
	assert.True(t, missing.CanAddVehicle())
}

func TestApplyPlan(t *testing.T) {
	plan, err := NewPlan("Pro", "", 4900, 289900)
	assert.NoError(t, err)
	assert.NoError(t, plan.SetLimits(intPtr(50), nil, intPtr(20)))

	l := &Limits{TenantID: 1, CurrentVehicles: 3}
	l.ApplyPlan(plan)

	assert.Equal(t, 50, *l.MaxVehicles)
	assert.Nil(t, l.MaxClients)
	assert.Equal(t, 20, *l.MaxEmployees)
	assert.Equal(t, 3, l.CurrentVehicles)
}
