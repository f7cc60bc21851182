// meta/meta.go
package meta

// DEFAULT_BOARD is the classic six-pit layout with three beads per pit.
const DEFAULT_BOARD = "0,3,3,3,3,3,3,0,3,3,3,3,3,3"

// DEFAULT_RUNS defines the number of playouts per candidate move.
const DEFAULT_RUNS = 1000

// MAX_RUNS caps the playout budget accepted from the command line.
const MAX_RUNS = 1000

// MIN_BOARD_LEN and MAX_BOARD_LEN bound the board length accepted from the command line.
const MIN_BOARD_LEN = 4
const MAX_BOARD_LEN = 100

// MAX_TURNS stops a local game that has not finished.
const MAX_TURNS = 10000
