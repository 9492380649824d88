package app_errors

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrIncorrectPassword = errors.New("incorrect password")
var ErrTokenNotFound = errors.New("token not found")
var ErrTokenExpired = errors.New("token expired")

var ErrPathNotFound = errors.New("learning path not found")
var ErrModuleNotFound = errors.New("module not found")
var ErrGenerationNotFound = errors.New("path generation not found")

var ErrNotQuizModule = errors.New("module has no quiz")
var ErrQuizRequired = errors.New("quiz module is completed by submitting its quiz")
var ErrModuleCompleted = errors.New("module already completed")
var ErrIncompleteAnswers = errors.New("quiz has unanswered questions")
var ErrInvalidOption = errors.New("option index out of range")
var ErrUnknownQuestion = errors.New("question does not belong to this quiz")

var ErrNotEligible = errors.New("path is not completed yet")
var ErrCertificateNotFound = errors.New("certificate not found")

var ErrRequestNotFound = errors.New("friend request not found")
var ErrRequestResolved = errors.New("friend request already resolved")
var ErrDuplicateRequest = errors.New("a pending request already exists between these users")
var ErrAlreadyFriends = errors.New("users are already friends")
var ErrSelfRequest = errors.New("cannot send a friend request to yourself")

var ErrVoiceURLMissing = errors.New("voice message requires a voice url")
