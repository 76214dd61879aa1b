// Package vacancy is the repository for vacancies and tags.
package vacancy
