package birds

type Walker interface {
	Walk() string
}

type Flyer interface {
	Walk() string
	Fly(altitude int) error
}

type Sparrow struct{ altitude int }

func (s *Sparrow) Walk() string { return "hop" }

func (s *Sparrow) Fly(altitude int) error {
	s.altitude = altitude
	return nil
}

type Ostrich struct{}

func (Ostrich) Walk() string { return "run" }

func (Ostrich) Fly(altitude int) error { return nil }

type Stone struct{}

func (Stone) Walk() string { return "" }

func (Stone) Fly(altitude int) error { return nil }
