package test

import (
	"testing"

	"project-submission-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}
