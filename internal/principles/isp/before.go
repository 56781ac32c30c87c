package isp

import "fmt"

// LegacyBird puts flight and rendering in one contract.
type LegacyBird interface {
	SetLocalization(longitude, latitude float64)
	SetAltitude(altitude float64)
	Render() string
}

type LegacyParrot struct {
	longitude, latitude, altitude float64
}

func (p *LegacyParrot) SetLocalization(longitude, latitude float64) {
	p.longitude, p.latitude = longitude, latitude
}

func (p *LegacyParrot) SetAltitude(altitude float64) { p.altitude = altitude }

func (p *LegacyParrot) Render() string {
	return fmt.Sprintf("parrot at (%.2f, %.2f) altitude %.1f", p.longitude, p.latitude, p.altitude)
}

type LegacyPenguin struct {
	longitude, latitude float64
}

func (p *LegacyPenguin) SetLocalization(longitude, latitude float64) {
	p.longitude, p.latitude = longitude, latitude
}

// SetAltitude exists only because LegacyBird demands it. Penguins don't fly.
func (p *LegacyPenguin) SetAltitude(altitude float64) {}

func (p *LegacyPenguin) Render() string {
	return fmt.Sprintf("penguin at (%.2f, %.2f)", p.longitude, p.latitude)
}
