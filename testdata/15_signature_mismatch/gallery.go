package gallery

type Renderer interface {
	Render() string
}

type Poster struct{ title string }

func (p Poster) Render() string { return "poster: " + p.title }

// Sketch has a Render method, but not the one Renderer asks for.
type Sketch struct{}

func (Sketch) Render(scale int) {}

type Gallery struct {
	s Sketch
}

func NewGallery() *Gallery {
	return &Gallery{s: Sketch{}}
}
