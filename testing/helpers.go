// Package testing provides fixtures for datapath tests.
package testing

import (
	"github.com/zoobzio/datapath"
)

// Profile is a record fixture addressed by json tag names.
type Profile struct {
	Name  string  `json:"name"`
	Email string  `json:"email,omitempty"`
	Tags  []any   `json:"tags"`
	Extra any     `json:"extra"`
	Boss  *Person `json:"boss"`
}

// Person is a nested record fixture with a path tag override.
type Person struct {
	FullName string `path:"full_name" json:"name"`
	Age      int
}

// Team is a record fixture whose fields are typed collections.
type Team struct {
	Name    string            `json:"name"`
	Tags    []string          `json:"tags"`
	Labels  map[string]string `json:"labels"`
	Scores  [2]int            `json:"scores"`
	Ranks   map[int]string    `json:"ranks"`
	Members []Person          `json:"members"`
	Meta    *datapath.Map     `json:"meta"`
}

// NewTeam returns a populated Team.
func NewTeam() *Team {
	return &Team{
		Name:   "core",
		Tags:   []string{"go", "api"},
		Labels: map[string]string{"tier": "gold", "region": "eu"},
		Scores: [2]int{7, 9},
		Ranks:  map[int]string{10: "ten", 2: "two"},
		Members: []Person{
			{FullName: "Taylor", Age: 30},
			{FullName: "Abigail", Age: 28},
		},
	}
}

// Users returns an ordered document with a list of users.
//
//	users: [{name: Taylor, email: taylor@laravel.com}, {name: Abigail, email: abigail@laravel.com}]
func Users() *datapath.Map {
	return datapath.NewMap(
		datapath.Entry{Key: "users", Value: []any{
			datapath.NewMap(
				datapath.Entry{Key: "name", Value: "Taylor"},
				datapath.Entry{Key: "email", Value: "taylor@laravel.com"},
			),
			datapath.NewMap(
				datapath.Entry{Key: "name", Value: "Abigail"},
				datapath.Entry{Key: "email", Value: "abigail@laravel.com"},
			),
		}},
	)
}

// Posts returns a plain-map document with two levels of lists.
func Posts() map[string]any {
	return map[string]any{
		"posts": []any{
			map[string]any{"comments": []any{
				map[string]any{"author": "Taylor", "text": "Great"},
				map[string]any{"author": "Abigail", "text": "Nice"},
			}},
			map[string]any{"comments": []any{
				map[string]any{"author": "Dries", "text": "Good"},
			}},
		},
	}
}

// DottedKeys returns a document whose keys contain dots.
func DottedKeys() map[string]any {
	return map[string]any{
		"user.name":       "John Doe",
		"user.email":      "john@example.com",
		"config.app.name": "My App",
	}
}
