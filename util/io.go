// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package util 命令行使用的文件读写工具
package util

import (
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrNotExist 文件或目录不存在
var ErrNotExist = errors.New("ErrNotExist")

//ReadFile : read file
func ReadFile(file string) ([]byte, error) {
	fileCont, err := ioutil.ReadFile(file)
	if err != nil {
		return nil, errors.Wrapf(err, "read file %s", file)
	}
	return fileCont, nil
}

//CheckFileIsExist : 文件存在且不是目录
func CheckFileIsExist(filename string) error {
	info, err := os.Stat(filename)
	if err != nil {
		return errors.Wrapf(ErrNotExist, "file %s", filename)
	}
	if info.IsDir() {
		return errors.Errorf("%s is a directory", filename)
	}
	return nil
}

// CheckPathExists 检查文件夹是否存在
func CheckPathExists(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(ErrNotExist, "path %s", path)
	}
	if !info.IsDir() {
		return errors.Errorf("%s is not a directory", path)
	}
	return nil
}

//WriteFile : 写入 dir/name, 已存在的文件被覆盖, 返回完整路径
func WriteFile(dir, name string, content []byte, perm os.FileMode) (string, error) {
	path := filepath.Join(dir, name)
	if err := ioutil.WriteFile(path, content, perm); err != nil {
		return "", errors.Wrapf(err, "write file %s", path)
	}
	// WriteFile 不修改已存在文件的权限
	if err := os.Chmod(path, perm); err != nil {
		return "", errors.Wrapf(err, "chmod %s", path)
	}
	return path, nil
}
