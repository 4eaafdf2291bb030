// Package service contains the application use cases: signup, login,
// current-user lookup, and task CRUD. Services compose the store
// contracts with the credential services and enforce ownership; they
// hold no state beyond their injected dependencies and never retry.
package service
