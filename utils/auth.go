package utils

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hrsuite/recruit-go/types"
)

func GetUserIDFromContext(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func GetClaimsFromContext(c *gin.Context) (*types.Claims, error) {
	raw, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("no claims in context")
	}
	claims, ok := raw.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid claims type")
	}
	return claims, nil
}

func ParseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, errors.New("invalid id parameter")
	}
	return uint(id), nil
}
