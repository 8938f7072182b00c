// Command rtuclient is a reference RTU master: it opens a serial
// port with goserial, encodes one request with the rtu package, reads
// the reply, and prints the decoded response. It exists to exercise
// real serial I/O around the codec, which itself never touches a
// port; see original teacher usage in rtu_client_test.go.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	serial "github.com/hootrhino/goserial"
	"github.com/hootrhino/modbuscore"
	"github.com/hootrhino/modbuscore/internal/modbuslog"
	"github.com/hootrhino/modbuscore/rtu"
	"go.uber.org/zap"
)

func main() {
	port := flag.String("port", "/dev/ttyUSB0", "serial device")
	baud := flag.Int("baud", 9600, "baud rate")
	slave := flag.Uint("slave", 1, "Modbus slave address")
	address := flag.Uint("address", 0, "starting register address")
	quantity := flag.Uint("quantity", 1, "number of holding registers to read")
	timeout := flag.Duration("timeout", 300*time.Millisecond, "serial round-trip timeout")
	flag.Parse()

	zlog, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rtuclient: build logger: %v\n", err)
		os.Exit(1)
	}
	defer zlog.Sync()
	logger := modbuslog.New(zlog)

	conn, err := serial.Open(&serial.Config{
		Address:  *port,
		BaudRate: *baud,
		DataBits: 8,
		StopBits: 1,
		Parity:   "N",
		Timeout:  *timeout,
	})
	if err != nil {
		logger.Errorw("open serial port", "port", *port, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	req := modbus.ReadHoldingRegistersRequest(uint16(*address), uint16(*quantity))
	wire := make([]byte, 1+req.PDULen()+2)
	n, err := rtu.EncodeRequest(uint8(*slave), req, wire)
	if err != nil {
		logger.Errorw("encode request", "error", err)
		os.Exit(1)
	}
	if _, err := conn.Write(wire[:n]); err != nil {
		logger.Errorw("write to serial port", "error", err)
		os.Exit(1)
	}

	buf := make([]byte, modbus.DefaultMaxFrameLen)
	read, err := conn.Read(buf)
	if err != nil {
		logger.Errorw("read from serial port", "error", err)
		os.Exit(1)
	}

	resp, _, ok, err := rtu.DecodeResponse(buf[:read], modbus.DefaultMaxFrameLen)
	if err != nil {
		logger.Errorw("decode response", "error", err)
		os.Exit(1)
	}
	if !ok {
		logger.Warnw("incomplete frame received", "bytes", read)
		os.Exit(1)
	}
	fmt.Printf("registers: %v\n", resp.Registers.All())
}
