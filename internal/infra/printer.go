package infra

import (
	"fmt"
	"net"
	"time"
)

// PrinterClient pushes raw ZPL to a Zebra label printer over TCP port 9100.
// Printing is a best-effort side effect: callers log failures and move on,
// the label ZPL is always returned to the UI as a fallback.
type PrinterClient struct {
	addr    string
	timeout time.Duration
}

func NewPrinterClient(addr string) *PrinterClient {
	return &PrinterClient{addr: addr, timeout: 5 * time.Second}
}

// Imprimir sends the ZPL payload and closes the connection. Zebra printers
// do not acknowledge raw-port jobs, so a successful write is as much
// confirmation as the protocol offers.
func (p *PrinterClient) Imprimir(zpl string) error {
	conn, err := net.DialTimeout("tcp", p.addr, p.timeout)
	if err != nil {
		return fmt.Errorf("printer: dial %s: %w", p.addr, err)
	}
	defer conn.Close()

	if err := conn.SetWriteDeadline(time.Now().Add(p.timeout)); err != nil {
		return fmt.Errorf("printer: set deadline: %w", err)
	}
	if _, err := conn.Write([]byte(zpl)); err != nil {
		return fmt.Errorf("printer: write: %w", err)
	}
	return nil
}
