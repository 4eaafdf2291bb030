// Package domain defines the core business entities of the task hub:
// users and their tasks, along with the validation rules and errors
// that apply to them. It has no dependencies on storage or transport.
package domain
