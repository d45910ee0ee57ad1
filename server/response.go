package server

import (
	"github.com/michaelolof/vregistry/cont"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fastjson"
)

var arenaPool fastjson.ArenaPool

func marshal(build func(a *fastjson.Arena) *fastjson.Value) []byte {
	a := arenaPool.Get()
	defer arenaPool.Put(a)
	return build(a).MarshalTo(nil)
}

func writeJSON(ctx *fasthttp.RequestCtx, code int, build func(a *fastjson.Arena) *fastjson.Value) {
	ctx.SetStatusCode(code)
	ctx.SetContentType(string(cont.ApplicationJson))
	ctx.SetBody(marshal(build))
}

func writeError(ctx *fasthttp.RequestCtx, code int, name string, err error) {
	writeJSON(ctx, code, func(a *fastjson.Arena) *fastjson.Value {
		return errorBody(a, name, err)
	})
}

func result(a *fastjson.Arena, name string, valid bool) *fastjson.Value {
	o := a.NewObject()
	o.Set("name", a.NewString(name))
	if valid {
		o.Set("valid", a.NewTrue())
	} else {
		o.Set("valid", a.NewFalse())
	}
	return o
}

func errorBody(a *fastjson.Arena, name string, err error) *fastjson.Value {
	o := a.NewObject()
	if name != "" {
		o.Set("name", a.NewString(name))
	}
	o.Set("error", a.NewString(err.Error()))
	return o
}

func stringArray(a *fastjson.Arena, items []string) *fastjson.Value {
	arr := a.NewArray()
	for i, item := range items {
		arr.SetArrayItem(i, a.NewString(item))
	}
	return arr
}
