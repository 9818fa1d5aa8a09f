package oop

import (
	"fmt"
	"slices"
)

// Student extends Person with enrolment data.
type Student struct {
	*Person
	StudentID string
	Grade     float64
	courses   []string
}

func NewStudent(name string, age int, id string, grade float64) *Student {
	return &Student{Person: NewPerson(name, age), StudentID: id, Grade: grade}
}

func (s *Student) Study(subject string) string {
	return fmt.Sprintf("%s is studying %s", s.Name, subject)
}

func (s *Student) Enroll(course string) {
	s.courses = append(s.courses, course)
}

func (s *Student) Courses() []string {
	return slices.Clone(s.courses)
}

type StudentInfo struct {
	PersonInfo `yaml:",inline"`
	StudentID  string   `json:"student_id" yaml:"student_id"`
	Grade      float64  `json:"grade" yaml:"grade"`
	Courses    []string `json:"courses" yaml:"courses"`
}

// Info shadows Person.Info and adds the student fields.
func (s *Student) Info() StudentInfo {
	return StudentInfo{
		PersonInfo: s.Person.Info(),
		StudentID:  s.StudentID,
		Grade:      s.Grade,
		Courses:    s.Courses(),
	}
}
