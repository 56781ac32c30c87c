package anything

type Anything interface{}

type Box struct{}
