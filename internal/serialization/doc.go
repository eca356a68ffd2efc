// Package serialization stores trained networks in the .ffnn model file format.
//
// A model file is a small binary container around a network snapshot:
//
//	Format Structure:
//	  [64 bytes: fixed header]
//	    0x00-0x03 Magic "FFNN"
//	    0x04-0x07 Version (uint32 LE)
//	    0x08-0x0B Flags (uint32 LE)
//	    0x0C-0x0F Reserved
//	    0x10-0x17 Header size (uint64 LE)
//	    0x18-0x1F Data size (uint64 LE)
//	    0x20-0x3F SHA-256 of the data section
//	  [Header: JSON metadata (model id, config, field names, tensor table)]
//	  [Padding to a 64-byte boundary]
//	  [Data: float64 LE values, weights then biases, row-major]
//
// Example usage:
//
//	// Save a model
//	if _, err := serialization.SaveFile("model.ffnn", net.Snapshot(), serialization.Options{}); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load a model
//	model, err := serialization.LoadFile("model.ffnn")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	net, err := network.FromSnapshot(model.Snapshot)
package serialization
