package app

import "go.trai.ch/todo/internal/core/ports"

// Components holds the application and the adapters the entry point needs directly.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Repository   ports.TaskRepository
}
