package usecase

const (
	defaultColor     = "#4A90E2"
	defaultCacheSize = 128
)
