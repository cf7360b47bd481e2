package app

// Version is the build version, injected at link time via
// -ldflags "-X github.com/dexai-ro/dexai-backend/internal/app.Version=...".
var Version = "dev"
