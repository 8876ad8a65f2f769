// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing delegation outcomes and task trees. Not
// intended for production usage.
package testutil
