package sim

import (
	"encoding/binary"
	"errors"
	"hash/crc32"
)

// Save state format constants
const (
	stateVersion    = 1
	stateMagic      = "SummerTTSim\x00"
	stateHeaderSize = 22 // magic(12) + version(2) + timingID(4) + dataCRC(4)
)

// Fixed serialization sizes for each block
const (
	fsmSerializeSize    = 9  // state(1) + timer(4) + phase(4)
	vsyncSerializeSize  = 5  // phase(4) + pulse(1)
	designSerializeSize = 11 // cycles(8) + resetN(1) + ena(1) + uiIn(1)
)

// SerializeSize is the total size in bytes of a save state. All blocks
// are fixed size, so this is a constant.
const SerializeSize = stateHeaderSize +
	fsmSerializeSize +
	vsyncSerializeSize +
	designSerializeSize

// boolByte converts a bool to a uint8 (0 or 1).
func boolByte(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Serialize creates a save state and returns it as a byte slice.
func (d *Design) Serialize() ([]byte, error) {
	data := make([]byte, SerializeSize)

	// Write header
	copy(data[0:12], stateMagic)
	binary.LittleEndian.PutUint16(data[12:14], stateVersion)
	binary.LittleEndian.PutUint32(data[14:18], uint32(d.timing.TickInterval()))

	offset := stateHeaderSize
	offset = d.serializeFSM(data, offset)
	offset = d.serializeVSync(data, offset)
	d.serializeDesign(data, offset)

	// Calculate and write data CRC32 (over everything after header)
	dataCRC := crc32.ChecksumIEEE(data[stateHeaderSize:])
	binary.LittleEndian.PutUint32(data[18:22], dataCRC)

	return data, nil
}

// Deserialize restores design state from a save state byte slice.
// The timing profile is NOT restored - the state must have been taken
// with the same profile the design is configured for.
func (d *Design) Deserialize(data []byte) error {
	if err := d.VerifyState(data); err != nil {
		return err
	}

	offset := stateHeaderSize
	offset = d.deserializeFSM(data, offset)
	offset = d.deserializeVSync(data, offset)
	d.deserializeDesign(data, offset)

	return nil
}

// VerifyState checks if a save state is valid without loading it.
func (d *Design) VerifyState(data []byte) error {
	if len(data) < SerializeSize {
		return errors.New("save state too short")
	}

	if string(data[0:12]) != stateMagic {
		return errors.New("invalid save state magic")
	}

	version := binary.LittleEndian.Uint16(data[12:14])
	if version > stateVersion {
		return errors.New("unsupported save state version")
	}

	interval := binary.LittleEndian.Uint32(data[14:18])
	if interval != uint32(d.timing.TickInterval()) {
		return errors.New("save state is for a different timing profile")
	}

	expectedCRC := binary.LittleEndian.Uint32(data[18:22])
	actualCRC := crc32.ChecksumIEEE(data[stateHeaderSize:SerializeSize])
	if expectedCRC != actualCRC {
		return errors.New("save state data is corrupted")
	}

	return nil
}

// serializeFSM writes ControlFSM state to the data buffer.
func (d *Design) serializeFSM(data []byte, offset int) int {
	data[offset] = uint8(d.fsm.state)
	offset++
	binary.LittleEndian.PutUint32(data[offset:], d.fsm.timer)
	offset += 4
	binary.LittleEndian.PutUint32(data[offset:], uint32(d.fsm.phase))
	offset += 4
	return offset
}

// deserializeFSM reads ControlFSM state from the data buffer.
func (d *Design) deserializeFSM(data []byte, offset int) int {
	d.fsm.state = State(data[offset] & 0x03)
	offset++
	d.fsm.timer = binary.LittleEndian.Uint32(data[offset:])
	offset += 4
	d.fsm.phase = int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	return offset
}

// serializeVSync writes tick source state to the data buffer.
func (d *Design) serializeVSync(data []byte, offset int) int {
	binary.LittleEndian.PutUint32(data[offset:], uint32(d.vsync.phase))
	offset += 4
	data[offset] = boolByte(d.vsync.pulse)
	offset++
	return offset
}

// deserializeVSync reads tick source state from the data buffer.
func (d *Design) deserializeVSync(data []byte, offset int) int {
	d.vsync.phase = int(binary.LittleEndian.Uint32(data[offset:]))
	offset += 4
	d.vsync.pulse = data[offset] != 0
	offset++
	return offset
}

// serializeDesign writes top-level pad and cycle state to the data buffer.
func (d *Design) serializeDesign(data []byte, offset int) int {
	binary.LittleEndian.PutUint64(data[offset:], d.cycles)
	offset += 8
	data[offset] = boolByte(d.resetN)
	offset++
	data[offset] = boolByte(d.ena)
	offset++
	data[offset] = d.uiIn
	offset++
	return offset
}

// deserializeDesign reads top-level pad and cycle state from the data buffer.
func (d *Design) deserializeDesign(data []byte, offset int) int {
	d.cycles = binary.LittleEndian.Uint64(data[offset:])
	offset += 8
	d.resetN = data[offset] != 0
	offset++
	d.ena = data[offset] != 0
	offset++
	d.uiIn = data[offset]
	offset++
	return offset
}
