package serialport

import (
	"errors"
	"fmt"

	"go.bug.st/serial"
	"go.bug.st/serial/enumerator"
)

// ErrNoDeviceFound is returned by Detect when no USB serial port is
// present.
var ErrNoDeviceFound = errors.New("serialport: no USB serial device found")

// baudRates are tried in descending order when the requested rate cannot be
// opened; some platforms reject rates their driver does not table.
var baudRates = []int{
	115200,
	57600,
	38400,
	19200,
	9600,
}

// Open opens a serial port at 8N1 with DTR asserted, trying the requested
// baud rate first and falling back through the common lower rates.
func Open(name string, baud int) (serial.Port, error) {
	var (
		port serial.Port
		err  error
	)

	for _, rate := range baudRates {
		if rate > baud {
			continue
		}

		port, err = serial.Open(name, &serial.Mode{
			BaudRate: rate,
			DataBits: 8,
			Parity:   serial.NoParity,
			StopBits: serial.OneStopBit,
		})
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("serialport: failed to open %s at any baud rate: %w", name, err)
	}

	if err := port.SetDTR(true); err != nil {
		port.Close()
		return nil, fmt.Errorf("serialport: failed to set DTR: %w", err)
	}

	return port, nil
}

// Detect returns the name of the first USB serial port on the system.
func Detect() (string, error) {
	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return "", err
	}

	for _, port := range ports {
		if port.IsUSB {
			return port.Name, nil
		}
	}

	return "", ErrNoDeviceFound
}

// WriteFull writes all of buf, retrying short writes.
func WriteFull(port serial.Port, buf []byte) error {
	sent := 0
	for sent < len(buf) {
		n, err := port.Write(buf[sent:])
		if err != nil {
			return err
		}
		sent += n
	}
	return nil
}

// ReadFull reads exactly len(buf) bytes.
func ReadFull(port serial.Port, buf []byte) error {
	got := 0
	for got < len(buf) {
		n, err := port.Read(buf[got:])
		if err != nil {
			return err
		}
		if n <= 0 {
			return fmt.Errorf("serialport: read returned %d", n)
		}
		got += n
	}
	return nil
}
