package display

import (
	"fmt"
	"os"

	"github.com/backmassage/clipcut/internal/term"
)

const banner = `       _ _                _
   ___| (_)_ __   ___ _   _| |_
  / __| | | '_ \ / __| | | | __|
 | (__| | | |_) | (__| |_| | |_
  \___|_|_| .__/ \___|\__,_|\__|
          |_|
`

// PrintBanner prints the ASCII art banner; magenta if colors are enabled.
func PrintBanner() {
	fmt.Fprint(os.Stdout, term.Magenta.Sprint(banner))
}
