// Package srp shows the single responsibility principle: a type should have
// one reason to change.
//
// OrderManager mixes order bookkeeping, presentation and persistence. The
// refactored version splits it into Order, OrderViewer and OrderRepository.
// The same idea applies to functions: EmailClients does everything in one
// loop, ActiveEmails composes single-purpose helpers.
package srp
