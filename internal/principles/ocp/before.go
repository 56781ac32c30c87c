package ocp

// LegacyCLTContract is a salaried employee with its own payment method.
type LegacyCLTContract struct{}

func (LegacyCLTContract) Salary(base float64) float64 { return base * 0.10 }

// LegacyTrainee is paid through a scholarship instead of a salary.
type LegacyTrainee struct{}

func (LegacyTrainee) AidScholarship(base float64) float64 { return base * 0.8 }

// LegacyPayroll has to know every employee type it pays.
type LegacyPayroll struct{}

// Calculate returns 0 for employee kinds it has not been taught about.
func (LegacyPayroll) Calculate(employee any, salary float64) float64 {
	switch e := employee.(type) {
	case LegacyCLTContract:
		return e.Salary(salary)
	case LegacyTrainee:
		return e.AidScholarship(salary)
	}
	return 0
}
