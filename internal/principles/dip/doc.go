// Package dip shows dependency inversion: high-level policy (sending password
// reminders) depends on an abstraction, and the database driver implements it.
//
// Injection alone is not inversion. ConcretePasswordReminder receives its
// connection but still names MySQLConnection; PasswordReminder names only
// DBConnection.
package dip
