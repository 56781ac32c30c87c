// Package isp shows interface segregation: no implementer should be forced to
// provide methods it cannot honour.
//
// LegacyBird makes LegacyPenguin implement SetAltitude as an empty method.
// Bird and FlyingBird split the contract so Penguin only implements what it
// can do.
package isp
