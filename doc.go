// Package cayennelpp implements decoding of the Cayenne LPP (Low Power
// Payload) format, used by LoRaWAN sensor devices to pack multiple typed
// sensor readings into a single byte buffer.
package cayennelpp
