package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"time"
)

var (
	ErrEmptyToken   = errors.New("token string is empty")
	ErrInvalidToken = errors.New("invalid token")
)

type JWT struct {
	key []byte
	now func() time.Time // 可替换的时钟，测试里用来模拟过期
}

// User 是令牌中携带的身份快照，IsAdmin 仅代表签发时的状态
type User struct {
	ID      uint
	Email   string
	IsAdmin bool
	Issued  int64 // Unix second
	Expires int64 // Unix second
}

type claims struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key), now: time.Now}, nil
}

// WithClock 返回使用指定时钟的副本，签发和校验都以它为准
func (j *JWT) WithClock(now func() time.Time) *JWT {
	return &JWT{key: j.key, now: now}
}

func (j *JWT) ParseUser(tokenString string) (*User, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, ErrEmptyToken
	}

	// 只接受 HS256 ，不留时钟余量
	c := &claims{}
	token, err := jwt.ParseWithClaims(tokenString, c, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || c.ID == 0 {
		return nil, ErrInvalidToken
	}

	user := &User{
		ID:      c.ID,
		Email:   c.Email,
		IsAdmin: c.IsAdmin,
		Expires: c.ExpiresAt.Unix(),
	}
	if c.IssuedAt != nil {
		user.Issued = c.IssuedAt.Unix()
	}

	return user, nil
}

// SignToken 签发令牌，有效期从当前时钟起算
func (j *JWT) SignToken(user *User, validity time.Duration) (string, *User, error) {
	issued := j.now()
	expires := issued.Add(validity)

	// 创建声明
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	})

	// 签名并返回
	signed, err := token.SignedString(j.key)
	if err != nil {
		return "", nil, fmt.Errorf("sign token: %w", err)
	}

	return signed, &User{
		ID:      user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Issued:  issued.Unix(),
		Expires: expires.Unix(),
	}, nil
}
