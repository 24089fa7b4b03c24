package main

// suffix holds the print flags that may trail a command.
type suffix int

const (
	suffixPrint suffix = 1 << iota
	suffixList
	suffixEnumerate
)

// command is one parsed line of input. The set of implementations is
// closed; exec switches over every one of them.
type command interface {
	flags() suffix
}

type cmdBase struct {
	rng addrRange
	cs  suffix
}

func (c cmdBase) flags() suffix { return c.cs }

type (
	// noopCmd is an empty line: step to the next line and print it.
	noopCmd struct{ cmdBase }

	// jumpCmd is an address without a command letter. Only addr is
	// used; the embedded range stays empty.
	jumpCmd struct {
		cmdBase
		addr address
	}

	quitCmd struct {
		cmdBase
		force bool
	}

	helpCmd    struct{ cmdBase }
	verboseCmd struct{ cmdBase }
	promptCmd  struct{ cmdBase }

	printCmd  struct{ cmdBase }
	deleteCmd struct{ cmdBase }
	changeCmd struct{ cmdBase }
	joinCmd   struct{ cmdBase }

	writeCmd struct {
		cmdBase
		path string
		app  bool // W
		quit bool // wq
	}

	insertCmd struct {
		cmdBase
		before *address
	}

	appendCmd struct {
		cmdBase
		after *address
	}

	editCmd struct {
		cmdBase
		path string
	}

	readCmd struct {
		cmdBase
		after *address
		path  string
	}

	moveCmd struct {
		cmdBase
		dest address
	}

	transferCmd struct {
		cmdBase
		dest address
	}

	substituteCmd struct {
		cmdBase
		arg string
	}

	filenameCmd struct {
		cmdBase
		path string
	}

	lineNumberCmd struct {
		cmdBase
		addr *address
	}

	scrollCmd struct {
		cmdBase
		addr  *address
		count int
	}
)
