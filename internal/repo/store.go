package repo

// Store defines the interface for repository storage backends.
type Store interface {
	SaveTask(task *Task) error
	GetTask(id string) (*Task, error)
	ListTasks(limit int) ([]*Task, error)
	DeleteTask(id string) error

	SaveUser(user *User) error
	GetUser(id string) (*User, error)
	ListUsers() ([]*User, error)
	DeleteUser(id string) error

	Close() error
}
