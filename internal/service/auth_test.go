package service_test

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"organizame.app/api/core/config"
	"organizame.app/api/internal/service"
)

var _ = Describe("AuthService", func() {
	const secret = "test-secret"

	var svc service.AuthService

	signToken := func(claims jwt.RegisteredClaims, key string) string {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
		Expect(err).NotTo(HaveOccurred())
		return token
	}

	BeforeEach(func() {
		svc = service.NewAuthService(config.AuthConfig{
			Secret:   secret,
			Audience: "authenticated",
		})
	})

	It("returns the subject of a valid token", func() {
		token := signToken(jwt.RegisteredClaims{
			Subject:   "uid-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, secret)

		uid, err := svc.VerifyToken(token)

		Expect(err).NotTo(HaveOccurred())
		Expect(uid).To(Equal("uid-1"))
	})

	It("rejects a token signed with another secret", func() {
		token := signToken(jwt.RegisteredClaims{
			Subject:   "uid-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, "other-secret")

		_, err := svc.VerifyToken(token)

		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects an expired token", func() {
		token := signToken(jwt.RegisteredClaims{
			Subject:   "uid-1",
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		}, secret)

		_, err := svc.VerifyToken(token)

		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects a token with the wrong audience", func() {
		token := signToken(jwt.RegisteredClaims{
			Subject:   "uid-1",
			Audience:  jwt.ClaimStrings{"anon"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, secret)

		_, err := svc.VerifyToken(token)

		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects a token without a subject", func() {
		token := signToken(jwt.RegisteredClaims{
			Audience:  jwt.ClaimStrings{"authenticated"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}, secret)

		_, err := svc.VerifyToken(token)

		Expect(err).To(MatchError(service.ErrInvalidToken))
	})

	It("rejects garbage", func() {
		_, err := svc.VerifyToken("not-a-token")

		Expect(err).To(MatchError(service.ErrInvalidToken))
	})
})
