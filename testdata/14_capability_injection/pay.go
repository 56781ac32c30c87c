package pay

type Remunerable interface {
	Remuneration(salary float64) float64
}

type Clerk struct{}

func (Clerk) Remuneration(salary float64) float64 { return salary * 0.1 }

type Intern struct{}

func (Intern) Remuneration(salary float64) float64 { return salary * 0.8 }

type Payroll struct {
	r Remunerable
}

func NewPayroll(r Remunerable) *Payroll { return &Payroll{r: r} }

func (p *Payroll) Calculate(salary float64) float64 { return p.r.Remuneration(salary) }
