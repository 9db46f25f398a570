package subscription

import "time"

// Limits is the one-to-one usage record for a tenant: current counters and
// the caps copied from the subscribed plan. A nil max means unlimited.
//
// Counters are maintained in the same database transaction as the entity
// write they account for, so current never exceeds a non-nil max.
type Limits struct {
	ID               uint
	TenantID         uint
	CurrentVehicles  int
	CurrentClients   int
	CurrentEmployees int
	MaxVehicles      *int
	MaxClients       *int
	MaxEmployees     *int
	UpdatedAt        time.Time
}

// Usage is the summary consumed by the usage cards: current count, cap and
// fill percentage.
type Usage struct {
	Current    int     `json:"current"`
	Max        int     `json:"max"`
	Percentage float64 `json:"percentage"`
}

func canAdd(current int, max *int) bool {
	if max == nil {
		return true
	}
	return current < *max
}

// CanAddVehicle reports whether one more vehicle fits under the cap. A nil
// receiver (tenant without a limits row) allows everything; the superadmin
// bypass happens at the application layer.
func (l *Limits) CanAddVehicle() bool {
	if l == nil {
		return true
	}
	return canAdd(l.CurrentVehicles, l.MaxVehicles)
}

func (l *Limits) CanAddClient() bool {
	if l == nil {
		return true
	}
	return canAdd(l.CurrentClients, l.MaxClients)
}

func (l *Limits) CanAddEmployee() bool {
	if l == nil {
		return true
	}
	return canAdd(l.CurrentEmployees, l.MaxEmployees)
}

func usage(current int, max *int) Usage {
	m := 0
	if max != nil {
		m = *max
	}
	u := Usage{Current: current, Max: m}
	if m > 0 {
		u.Percentage = float64(current) / float64(m) * 100
	}
	return u
}

// VehicleUsage returns {current, max, percentage}. A missing limits row
// reads as 0/0/0 even though CanAddVehicle treats it as unlimited; the
// asymmetry matches the behavior the usage cards were built around.
func (l *Limits) VehicleUsage() Usage {
	if l == nil {
		return Usage{}
	}
	return usage(l.CurrentVehicles, l.MaxVehicles)
}

func (l *Limits) ClientUsage() Usage {
	if l == nil {
		return Usage{}
	}
	return usage(l.CurrentClients, l.MaxClients)
}

func (l *Limits) EmployeeUsage() Usage {
	if l == nil {
		return Usage{}
	}
	return usage(l.CurrentEmployees, l.MaxEmployees)
}

// ApplyPlan copies the plan's caps onto the limits record. Counters are
// left untouched.
func (l *Limits) ApplyPlan(p *Plan) {
	l.MaxVehicles = p.VehicleLimit
	l.MaxClients = p.ClientLimit
	l.MaxEmployees = p.EmployeeLimit
	l.UpdatedAt = time.Now().UTC()
}
