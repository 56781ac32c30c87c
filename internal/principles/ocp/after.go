package ocp

// Remunerable is anything the payroll can pay.
type Remunerable interface {
	Remuneration(salary float64) float64
}

// CLTContract pays 10% of the base salary.
type CLTContract struct{}

func (CLTContract) Remuneration(salary float64) float64 { return salary * 0.10 }

// Trainee pays 80% of the base salary.
type Trainee struct{}

func (Trainee) Remuneration(salary float64) float64 { return salary * 0.8 }

// Payroll pays one kind of employee.
type Payroll struct {
	remunerable Remunerable
}

func NewPayroll(r Remunerable) *Payroll {
	return &Payroll{remunerable: r}
}

// Calculate delegates to the employee kind the payroll was built with.
func (p *Payroll) Calculate(salary float64) float64 {
	return p.remunerable.Remuneration(salary)
}
