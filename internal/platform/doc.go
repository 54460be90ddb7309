package platform

// Package platform contains OS integration: resolving the application base
// directory (including bundled executables), scanning the sounds directory,
// and opening folders in the system file manager.
