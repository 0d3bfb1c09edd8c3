// Command termkeydemo drives internal/termkey directly against stdin,
// printing every decoded key until it sees 'q' or Ctrl+C. It exists to
// exercise the terminfo driver with a real xo/terminfo-backed
// TerminfoSource, something the package's own tests only fake.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dshills/gokeys/internal/termkey"
)

func main() {
	waitTime := flag.Duration("wait", 50*time.Millisecond, "ambiguous-escape timeout")
	term := flag.String("term", os.Getenv("TERM"), "TERM value to select a driver for")
	flag.Parse()

	fd := int(os.Stdin.Fd())

	dec, err := termkey.New(fd, termkey.Utf8,
		termkey.WithWaitTime(*waitTime),
		termkey.WithTerminfoSource(xoTerminfoSource{}),
		termkey.WithTerm(*term),
	)
	if err != nil {
		log.Fatalf("termkeydemo: %v", err)
	}
	defer dec.Close()

	fmt.Println("termkeydemo - press keys to see decoded events ('q' or Ctrl+C to quit)")

	for {
		var key termkey.KeyEvent
		switch dec.WaitKey(context.Background(), &key) {
		case termkey.ResultKey:
			fmt.Println(termkey.FormatKey(dec, key, termkey.LongMod|termkey.WrapBracket))
			if key.Type == termkey.TypeUnicode && (key.Codepoint == 'q' ||
				(key.Codepoint == 'C' && key.Modifiers == termkey.ModCtrl)) {
				return
			}
		case termkey.ResultEOF:
			return
		}
	}
}
