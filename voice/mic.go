package voice

import (
	"fmt"
	"log"
	"sync"

	"github.com/gen2brain/malgo"
)

const captureSampleRate = 44100

// MicSensor captures the default input device and analyses it with an
// Analyser. The device is held from Start until Close.
type MicSensor struct {
	mu       sync.Mutex
	debug    bool
	ctx      *malgo.AllocatedContext
	device   *malgo.Device
	analyser *Analyser
}

func NewMicSensor(debug bool) *MicSensor {
	return &MicSensor{debug: debug, analyser: NewAnalyser()}
}

func (m *MicSensor) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.device != nil {
		return nil
	}

	ctx, err := malgo.InitContext(nil, malgo.ContextConfig{}, func(message string) {
		if m.debug {
			log.Printf("voice: backend: %s", message)
		}
	})
	if err != nil {
		return fmt.Errorf("voice: init audio context: %w", err)
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Capture)
	cfg.Capture.Format = malgo.FormatS16
	cfg.Capture.Channels = 1
	cfg.SampleRate = captureSampleRate
	cfg.Alsa.NoMMap = 1

	analyser := m.analyser
	device, err := malgo.InitDevice(ctx.Context, cfg, malgo.DeviceCallbacks{
		Data: func(_, input []byte, _ uint32) {
			analyser.WritePCM16(input)
		},
	})
	if err != nil {
		_ = ctx.Uninit()
		ctx.Free()
		return fmt.Errorf("voice: open capture device: %w", err)
	}

	if err := device.Start(); err != nil {
		device.Uninit()
		_ = ctx.Uninit()
		ctx.Free()
		return fmt.Errorf("voice: start capture: %w", err)
	}

	m.ctx = ctx
	m.device = device
	if m.debug {
		log.Printf("voice: capturing at %d Hz", captureSampleRate)
	}
	return nil
}

// Loudness returns 0 until the device has been started.
func (m *MicSensor) Loudness() float64 {
	m.mu.Lock()
	analyser := m.analyser
	started := m.device != nil
	m.mu.Unlock()
	if !started {
		return 0
	}
	return analyser.Loudness()
}

func (m *MicSensor) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.device == nil {
		return nil
	}
	var err error
	if stopErr := m.device.Stop(); stopErr != nil {
		err = fmt.Errorf("voice: stop capture: %w", stopErr)
	}
	m.device.Uninit()
	if uninitErr := m.ctx.Uninit(); uninitErr != nil && err == nil {
		err = fmt.Errorf("voice: release audio context: %w", uninitErr)
	}
	m.ctx.Free()
	m.device = nil
	m.ctx = nil
	m.analyser = NewAnalyser()
	return err
}
