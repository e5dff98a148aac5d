package cli

import (
	"fmt"
	"io"

	"github.com/careledger/careledger/pkg/utils/message"
	"github.com/m-mizutani/goerr/v2"
)

// errTagRead marks failures of commands that only read data
var errTagRead = goerr.NewTag("read")

// ReportError writes the user facing form of a command failure to w
func ReportError(w io.Writer, err error) {
	if err == nil {
		return
	}

	c := message.Write
	if goerr.HasTag(err, errTagRead) {
		c = message.Display
	}
	fmt.Fprintln(w, message.Normalize(err, c))

	if message.IsAuthError(err) {
		fmt.Fprintln(w, "Hint: pass --principal or set CARELEDGER_PRINCIPAL to call as a signed-in user.")
	}
}
