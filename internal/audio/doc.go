package audio

// Package audio plays looping ambient sounds through gopxl/beep. Each track
// owns one Player; all players share a single speaker Backend. Status changes
// are handed to a Dispatcher so UI code receives them on its own thread.
