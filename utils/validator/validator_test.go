package validatorx_test

import (
	"sync"
	"testing"

	validatorx "github.com/muhammadheryan/classifieds/utils/validator"
	"github.com/stretchr/testify/assert"
)

type titled struct {
	Title string `validate:"notblank,max=8"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		in      titled
		wantErr bool
	}{
		{name: "valid", in: titled{Title: "bike"}},
		{name: "blank", in: titled{Title: "   "}, wantErr: true},
		{name: "too long", in: titled{Title: "mountain bike"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatorx.ValidateStruct(&tt.in)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestValidateStruct_ConcurrentFirstUse(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = validatorx.ValidateStruct(&titled{Title: "ok"})
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		assert.NoError(t, err)
	}
}
