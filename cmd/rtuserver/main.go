// Command rtuserver is a reference RTU slave: it opens a serial port
// with goserial, decodes incoming requests with the rtu package, and
// answers ReadHoldingRegisters requests from an in-memory register
// bank. It exists to exercise real serial I/O around the codec.
package main

import (
	"flag"
	"fmt"
	"os"

	serial "github.com/hootrhino/goserial"
	"github.com/hootrhino/modbuscore"
	"github.com/hootrhino/modbuscore/internal/modbuslog"
	"github.com/hootrhino/modbuscore/rtu"
	"go.uber.org/zap"
)

func main() {
	port := flag.String("port", "/dev/ttyUSB0", "serial device")
	baud := flag.Int("baud", 9600, "baud rate")
	slave := flag.Uint("slave", 1, "Modbus slave address to answer for")
	flag.Parse()

	zlog, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintf(os.Stderr, "rtuserver: build logger: %v\n", err)
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
	})
	if err != nil {
		logger.Errorw("open serial port", "port", *port, "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	bank := make([]uint16, 128)
	for i := range bank {
		bank[i] = uint16(i)
	}

	buf := make([]byte, modbus.DefaultMaxFrameLen)
	for {
		n, err := conn.Read(buf)
		if err != nil {
			logger.Errorw("read from serial port", "error", err)
			continue
		}

		req, gotSlave, _, ok, err := rtu.DecodeRequest(buf[:n], modbus.DefaultMaxFrameLen)
		if err != nil {
			logger.Warnw("decode request", "error", err)
			continue
		}
		if !ok || gotSlave != uint8(*slave) {
			continue
		}

		resp, respErr := handle(req, bank)
		out := make([]byte, modbus.DefaultMaxFrameLen)
		var wn int
		if respErr != nil {
			er := modbus.ExceptionResponse{Function: req.Function, Exception: modbus.ExcIllegalDataAddress}
			wn, err = rtu.EncodeExceptionResponse(gotSlave, er, out)
		} else {
			wn, err = rtu.EncodeResponse(gotSlave, resp, out)
		}
		if err != nil {
			logger.Errorw("encode response", "error", err)
			continue
		}
		if _, err := conn.Write(out[:wn]); err != nil {
			logger.Errorw("write to serial port", "error", err)
		}
	}
}

func handle(req modbus.Request, bank []uint16) (modbus.Response, error) {
	if req.Function != modbus.FuncReadHoldingRegisters {
		return modbus.Response{}, &modbus.CodecError{Kind: modbus.ErrUnsupported}
	}
	start, qty := int(req.Address), int(req.Quantity)
	if start < 0 || qty < 0 || start+qty > len(bank) {
		return modbus.Response{}, &modbus.CodecError{Kind: modbus.ErrUnsupported}
	}
	data := make([]byte, qty*2)
	for i := 0; i < qty; i++ {
		w := bank[start+i]
		data[i*2] = byte(w >> 8)
		data[i*2+1] = byte(w)
	}
	return modbus.ReadHoldingRegistersResponse(modbus.NewRegistersView(data, qty)), nil
}
