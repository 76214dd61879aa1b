// Package staff is the repository for staff members.
package staff
