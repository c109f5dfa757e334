package raster

import "bufio"
import "encoding/binary"
import "io"
import "os"

const tgaHeaderSize = 18
const tgaSignature = "TRUEVISION-XFILE.\x00"

// Writes the raster as an uncompressed, bottom-up, 24-bit TGA image:
// the 18-byte header, the raw BGR data, 8 zero bytes for the extension
// and developer area offsets and the 18-byte signature.
func (self *Raster) WriteTGA(writer io.Writer) error {
	header := make([]byte, 0, tgaHeaderSize)
	header = append(header, 0) // no ID
	header = append(header, 0) // no color map
	header = append(header, 2) // uncompressed true color
	header = binary.LittleEndian.AppendUint16(header, 0) // color map spec: first entry
	header = binary.LittleEndian.AppendUint16(header, 0) // color map spec: length
	header = append(header, 0) // color map spec: entry size
	header = binary.LittleEndian.AppendUint16(header, 0) // x origin
	header = binary.LittleEndian.AppendUint16(header, 0) // y origin
	header = binary.LittleEndian.AppendUint16(header, uint16(self.width))
	header = binary.LittleEndian.AppendUint16(header, uint16(self.height))
	header = append(header, 24) // color depth
	header = append(header, 0) // descriptor: bottom-up, no alpha
	if len(header) != tgaHeaderSize { panic("broken code") }

	_, err := writer.Write(header)
	if err != nil { return err }
	_, err = writer.Write(self.data)
	if err != nil { return err }

	var footer [8 + len(tgaSignature)]byte
	copy(footer[8 : ], tgaSignature)
	_, err = writer.Write(footer[ : ])
	return err
}

// Saves the raster as a TGA file. See [Raster.WriteTGA]().
func (self *Raster) SaveTGA(filename string) error {
	return saveFile(filename, self.WriteTGA)
}

func saveFile(filename string, write func(io.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil { return err }
	writer := bufio.NewWriter(file)
	err = write(writer)
	if err == nil { err = writer.Flush() }
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
