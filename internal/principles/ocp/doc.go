// Package ocp shows the open/closed principle: add behaviour by adding code,
// not by editing code that already works.
//
// LegacyPayroll must be edited for every new kind of employee. Payroll
// depends on Remunerable only, so Contractor is added without touching it.
package ocp
