package captcha_fx

import (
	"go.uber.org/fx"

	"royalnano/internal/services"
)

var Module = fx.Provide(provideCaptchaVerifier)

func provideCaptchaVerifier() services.CaptchaVerifierInterface {
	return services.NewCaptchaVerifier()
}
