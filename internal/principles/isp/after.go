package isp

import "fmt"

// Bird is what every bird on the map supports.
type Bird interface {
	SetLocalization(longitude, latitude float64)
	Render() string
}

// FlyingBird adds altitude for birds that can leave the ground.
type FlyingBird interface {
	Bird
	SetAltitude(altitude float64)
}

type Parrot struct {
	longitude, latitude, altitude float64
}

func (p *Parrot) SetLocalization(longitude, latitude float64) {
	p.longitude, p.latitude = longitude, latitude
}

func (p *Parrot) SetAltitude(altitude float64) { p.altitude = altitude }

func (p *Parrot) Render() string {
	return fmt.Sprintf("parrot at (%.2f, %.2f) altitude %.1f", p.longitude, p.latitude, p.altitude)
}

type Penguin struct {
	longitude, latitude float64
}

func (p *Penguin) SetLocalization(longitude, latitude float64) {
	p.longitude, p.latitude = longitude, latitude
}

func (p *Penguin) Render() string {
	return fmt.Sprintf("penguin at (%.2f, %.2f)", p.longitude, p.latitude)
}

// BirdView places a bird on the map and draws it.
type BirdView struct {
	bird Bird
}

func NewBirdView(b Bird) *BirdView {
	return &BirdView{bird: b}
}

func (v *BirdView) Show(longitude, latitude float64) string {
	v.bird.SetLocalization(longitude, latitude)
	return v.bird.Render()
}

// FlightController only accepts birds that can fly.
type FlightController struct {
	bird FlyingBird
}

func NewFlightController(b FlyingBird) *FlightController {
	return &FlightController{bird: b}
}

func (c *FlightController) Climb(altitude float64) string {
	c.bird.SetAltitude(altitude)
	return c.bird.Render()
}
