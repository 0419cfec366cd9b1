package util

// BitBoard stores a whole board using individual bits instead of bytes
// This divides space required by 8
type BitBoard struct {
	RowLength int
	NumRows   int
	Bytes     []byte
}

// BitBoardFromBoard will construct a BitBoard from any board
func BitBoardFromBoard(board Board) *BitBoard {
	width, height := board.Width(), board.Height()
	bitBoard := new(BitBoard)
	bitBoard.RowLength = width
	bitBoard.NumRows = height
	// Round up so boards whose area isn't a multiple of 8 still fit
	bitBoard.Bytes = make([]byte, (width*height+7)/8)

	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if board.Alive(col, row) {
				bit := uint(row*width + col)
				bitBoard.Bytes[bit>>3] |= 1 << (bit & 7)
			}
		}
	}
	return bitBoard
}

// Get returns a cell in the bit array as if it was a 2d slice
func (b *BitBoard) Get(row, col int) bool {
	bit := uint(row*b.RowLength + col)
	// Perform bitwise operations to get the byte and bit indices
	return b.Bytes[bit>>3]&(1<<(bit&7)) > 0
}

// Equal reports whether both boards have the same shape and the same cells
func (b *BitBoard) Equal(other *BitBoard) bool {
	if b.RowLength != other.RowLength || b.NumRows != other.NumRows {
		return false
	}
	for row := 0; row < b.NumRows; row++ {
		for col := 0; col < b.RowLength; col++ {
			if b.Get(row, col) != other.Get(row, col) {
				return false
			}
		}
	}
	return true
}

// Key returns the packed bytes as a string, usable as a map key.
func (b *BitBoard) Key() string {
	return string(b.Bytes)
}
