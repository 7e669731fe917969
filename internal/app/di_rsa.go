package app

import (
	"fmt"

	rsaDomain "github.com/allisson/rsatoy/internal/rsa/domain"
	rsaService "github.com/allisson/rsatoy/internal/rsa/service"
	rsaUsecase "github.com/allisson/rsatoy/internal/rsa/usecase"
)

// KeyParams returns the validated key parameters built from configuration.
func (c *Container) KeyParams() (rsaDomain.KeyParams, error) {
	var err error
	c.keyParamsInit.Do(func() {
		c.keyParams, err = c.config.KeyParams()
		if err != nil {
			c.initErrors["keyParams"] = err
		}
	})
	if err != nil {
		return rsaDomain.KeyParams{}, err
	}
	if storedErr, exists := c.initErrors["keyParams"]; exists {
		return rsaDomain.KeyParams{}, storedErr
	}
	return c.keyParams, nil
}

// Cipher returns the textbook unit cipher.
func (c *Container) Cipher() (rsaService.UnitCipher, error) {
	var err error
	c.cipherInit.Do(func() {
		c.cipher, err = c.initCipher()
		if err != nil {
			c.initErrors["cipher"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["cipher"]; exists {
		return nil, storedErr
	}
	return c.cipher, nil
}

// TranscodeUseCase returns the transcoding use case, instrumented with metrics.
func (c *Container) TranscodeUseCase() (rsaUsecase.TranscodeUseCase, error) {
	var err error
	c.transcodeUseCaseInit.Do(func() {
		c.transcodeUseCase, err = c.initTranscodeUseCase()
		if err != nil {
			c.initErrors["transcodeUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["transcodeUseCase"]; exists {
		return nil, storedErr
	}
	return c.transcodeUseCase, nil
}

// VerifyUseCase returns the verification use case, instrumented with metrics.
func (c *Container) VerifyUseCase() (rsaUsecase.VerifyUseCase, error) {
	var err error
	c.verifyUseCaseInit.Do(func() {
		c.verifyUseCase, err = c.initVerifyUseCase()
		if err != nil {
			c.initErrors["verifyUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["verifyUseCase"]; exists {
		return nil, storedErr
	}
	return c.verifyUseCase, nil
}

func (c *Container) initCipher() (rsaService.UnitCipher, error) {
	params, err := c.KeyParams()
	if err != nil {
		return nil, fmt.Errorf("failed to load key parameters: %w", err)
	}
	return rsaService.NewTextbookCipher(params, c.engine)
}

func (c *Container) initTranscodeUseCase() (rsaUsecase.TranscodeUseCase, error) {
	cipher, err := c.Cipher()
	if err != nil {
		return nil, err
	}
	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	// One byte of the buffer is reserved for the line terminator.
	maxUnits := c.config.MaxMessageBytes - 1
	useCase := rsaUsecase.NewTranscodeUseCase(cipher, c.engine, maxUnits, c.Logger())
	return rsaUsecase.NewTranscodeUseCaseWithMetrics(useCase, bm), nil
}

func (c *Container) initVerifyUseCase() (rsaUsecase.VerifyUseCase, error) {
	cipher, err := c.Cipher()
	if err != nil {
		return nil, err
	}
	bm, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}

	useCase := rsaUsecase.NewVerifyUseCase(
		cipher,
		c.engine,
		rsaService.NewReferenceExponentiator(),
		c.config.VerifyWorkers,
		c.Logger(),
	)
	return rsaUsecase.NewVerifyUseCaseWithMetrics(useCase, bm), nil
}
