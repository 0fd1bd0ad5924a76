package inmemdb

import (
	"sync"

	"github.com/ethiopulse/backend/core/catalog"
	"github.com/ethiopulse/backend/core/user"
)

// DB is the process-local store backing all repositories. Domain data is
// static platform content; nothing survives a restart.
type DB struct {
	user    *userTable
	catalog *catalogTables
}

type userTable struct {
	mutex sync.RWMutex
	table map[string]*user.User
}

type catalogTables struct {
	mutex     sync.RWMutex
	courses   map[string]*catalog.Course
	materials map[string]*catalog.Material
	quizzes   map[string]*catalog.Quiz
}

// Open returns a DB seeded with the platform's stock content.
func Open() (*DB, error) {
	db := &DB{
		user: &userTable{table: make(map[string]*user.User)},
		catalog: &catalogTables{
			courses:   make(map[string]*catalog.Course),
			materials: make(map[string]*catalog.Material),
			quizzes:   make(map[string]*catalog.Quiz),
		},
	}
	if err := db.seed(); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenEmpty returns a DB with no seed data; for tests.
func OpenEmpty() *DB {
	return &DB{
		user: &userTable{table: make(map[string]*user.User)},
		catalog: &catalogTables{
			courses:   make(map[string]*catalog.Course),
			materials: make(map[string]*catalog.Material),
			quizzes:   make(map[string]*catalog.Quiz),
		},
	}
}
