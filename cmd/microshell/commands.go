package main

import (
	"strconv"
	"time"

	"github.com/geekfactory/microshell/shell"
)

const version = "1.0.0"

// registerCommands installs the demo command set. Handlers produce all of
// their output through the shell so it rides the same batched transport as
// the echo stream.
func registerCommands(sh *shell.Shell, tt *termTransport) {
	start := time.Now()

	sh.Register("echo", func(argv [][]byte) int {
		for i := 1; i < len(argv); i++ {
			if i > 1 {
				sh.Printf("%c", shell.Char(' '))
			}
			sh.Printf("%s", shell.Str(string(argv[i])))
		}
		sh.Print("\r\n")
		return 0
	})

	sh.Register("add", func(argv [][]byte) int {
		if len(argv) != 3 {
			sh.PrintError(shell.ErrArgCount, "")
			return 1
		}
		a, err := strconv.ParseInt(string(argv[1]), 10, 64)
		if err != nil {
			sh.PrintError(shell.ErrValue, "a")
			return 1
		}
		b, err := strconv.ParseInt(string(argv[2]), 10, 64)
		if err != nil {
			sh.PrintError(shell.ErrValue, "b")
			return 1
		}
		sh.Printf("%d + %d = %d\r\n", shell.Int(a), shell.Int(b), shell.Int(a+b))
		return 0
	})

	sh.Register("hex", func(argv [][]byte) int {
		if len(argv) != 2 {
			sh.PrintError(shell.ErrArgCount, "")
			return 1
		}
		v, err := strconv.ParseUint(string(argv[1]), 0, 64)
		if err != nil {
			sh.PrintError(shell.ErrValue, "value")
			return 1
		}
		sh.Printf("hex=%x HEX=%X padded=%08x\r\n",
			shell.Uint(v), shell.Uint(v), shell.Uint(v))
		return 0
	})

	sh.Register("uptime", func(argv [][]byte) int {
		sh.Printf("%u s\r\n", shell.Uint(uint64(time.Since(start).Seconds())))
		return 0
	})

	sh.Register("commands", func(argv [][]byte) int {
		sh.PrintCommands()
		return 0
	})

	sh.Register("version", func(argv [][]byte) int {
		sh.Println("microshell " + version)
		return 0
	})

	sh.Register("exit", func(argv [][]byte) int {
		tt.quit = true
		return 0
	})
}
