// Package candidate is the repository for candidates and their resumes.
//
// Besides passing searches through with normalized paging it can pull a
// resume file and extract its plain text for quick reading in a terminal.
package candidate
