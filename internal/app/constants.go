package app

// DefaultMaxTurns bounds a simulated game. A full wall cannot last longer than
// this, so it only guards against a stuck loop.
const DefaultMaxTurns = 400

// MaxCourtesyCount is the largest number of tiles a courtesy pass may move.
const MaxCourtesyCount = 3
