// Package mocks provides mock implementations of the RSA use cases for testing commands.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
)

// MockTranscodeUseCase is a mock implementation of TranscodeUseCase.
type MockTranscodeUseCase struct {
	mock.Mock
}

// Transcode mocks the Transcode method of TranscodeUseCase.
func (m *MockTranscodeUseCase) Transcode(ctx context.Context, message []byte) (*rsaDomain.Transcript, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.Transcript), args.Error(1)
}

// Encrypt mocks the Encrypt method of TranscodeUseCase.
func (m *MockTranscodeUseCase) Encrypt(ctx context.Context, message []byte) ([]uint64, error) {
	args := m.Called(ctx, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

// Decrypt mocks the Decrypt method of TranscodeUseCase.
func (m *MockTranscodeUseCase) Decrypt(ctx context.Context, ciphertext []uint64) ([]byte, error) {
	args := m.Called(ctx, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// TraceUnit mocks the TraceUnit method of TranscodeUseCase.
func (m *MockTranscodeUseCase) TraceUnit(ctx context.Context, plain byte) (*rsaDomain.UnitTrace, error) {
	args := m.Called(ctx, plain)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.UnitTrace), args.Error(1)
}

// MockVerifyUseCase is a mock implementation of VerifyUseCase.
type MockVerifyUseCase struct {
	mock.Mock
}

// Verify mocks the Verify method of VerifyUseCase.
func (m *MockVerifyUseCase) Verify(ctx context.Context) (*rsaDomain.VerifyReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*rsaDomain.VerifyReport), args.Error(1)
}
