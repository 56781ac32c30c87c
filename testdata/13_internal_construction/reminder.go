package reminder

type Conn interface {
	Connect() error
}

type MySQL struct{ n int }

func (m *MySQL) Connect() error {
	m.n++
	return nil
}

func NewMySQL() *MySQL { return &MySQL{} }

type Settings struct{ Retries int }

type Coupled struct {
	conn     *MySQL
	settings Settings
}

func NewCoupled() *Coupled {
	return &Coupled{conn: &MySQL{}, settings: Settings{Retries: 3}}
}

type Lazy struct {
	conn *MySQL
}

func NewLazy() *Lazy {
	l := &Lazy{}
	l.conn = NewMySQL()
	return l
}

type Injected struct {
	conn Conn
}

func NewInjected(c Conn) *Injected {
	return &Injected{conn: c}
}
