package freebox

var Password = password
